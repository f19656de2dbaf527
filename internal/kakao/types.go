// Package kakao implements the Kakao i Open Builder skill payload
// schema (v2.0) and the response builder that enforces its card shape
// and image constraints.
package kakao

// SkillRequest is the inbound webhook payload the platform posts to a
// skill endpoint. One instance lives for one request.
type SkillRequest struct {
	Intent      Intent      `json:"intent"`
	UserRequest UserRequest `json:"userRequest"`
	Bot         Bot         `json:"bot"`
	Action      Action      `json:"action"`
	Contexts    []any       `json:"contexts,omitempty"`
}

type Intent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Bot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Block struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

type UserRequest struct {
	Timezone  string            `json:"timezone"`
	Params    map[string]string `json:"params,omitempty"`
	Block     Block             `json:"block"`
	Utterance string            `json:"utterance"`
	Lang      string            `json:"lang,omitempty"`
	User      *User             `json:"user,omitempty"`
}

type Action struct {
	Name         string            `json:"name"`
	ClientExtra  map[string]any    `json:"clientExtra,omitempty"`
	Params       map[string]string `json:"params,omitempty"`
	ID           string            `json:"id"`
	DetailParams map[string]any    `json:"detailParams,omitempty"`
}

// SkillResponse is the outbound payload. Constructed fresh per request.
type SkillResponse struct {
	Version  string   `json:"version"`
	Template Template `json:"template"`
}

type Template struct {
	Outputs      []Output     `json:"outputs"`
	QuickReplies []QuickReply `json:"quickReplies,omitempty"`
}

// Output is one response block. The card kinds form a closed set fixed
// by the platform protocol; exactly one field is non-nil.
type Output struct {
	SimpleText *SimpleText `json:"simpleText,omitempty"`
	BasicCard  *BasicCard  `json:"basicCard,omitempty"`
	ListCard   *ListCard   `json:"listCard,omitempty"`
	Carousel   *Carousel   `json:"carousel,omitempty"`
}

type SimpleText struct {
	Text string `json:"text"`
}

type Thumbnail struct {
	ImageURL   string `json:"imageUrl"`
	FixedRatio bool   `json:"fixedRatio,omitempty"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
}

type BasicCard struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Thumbnail   *Thumbnail `json:"thumbnail,omitempty"`
	Buttons     []Button   `json:"buttons,omitempty"`
}

type ListHeader struct {
	Title string `json:"title"`
}

type ListItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Action      string `json:"action,omitempty"`
	MessageText string `json:"messageText,omitempty"`
}

type ListCard struct {
	Header  ListHeader `json:"header"`
	Items   []ListItem `json:"items"`
	Buttons []Button   `json:"buttons,omitempty"`
}

type Carousel struct {
	Type  string      `json:"type"`
	Items []BasicCard `json:"items"`
}

type Button struct {
	Label       string `json:"label"`
	Action      string `json:"action"`
	WebLinkURL  string `json:"webLinkUrl,omitempty"`
	MessageText string `json:"messageText,omitempty"`
}

type QuickReply struct {
	Label       string `json:"label"`
	Action      string `json:"action"`
	MessageText string `json:"messageText,omitempty"`
}
