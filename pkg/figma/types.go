package figma

// FileResponse represents the response from the Figma file endpoint.
// Only the document tree and the file-level style map are used by the token pipeline.
type FileResponse struct {
	Name          string           `json:"name"`
	LastModified  string           `json:"lastModified"`
	Version       string           `json:"version"`
	Document      Node             `json:"document"`
	Styles        map[string]Style `json:"styles"`
	SchemaVersion int              `json:"schemaVersion"`
}

// NodesResponse represents the response from the Figma nodes endpoint.
// Nodes maps every requested node ID to its data; IDs unknown to Figma map to null.
type NodesResponse struct {
	Name         string               `json:"name"`
	LastModified string               `json:"lastModified"`
	Version      string               `json:"version"`
	Nodes        map[string]*NodeData `json:"nodes"`
}

// NodeData wraps a single node returned by the nodes endpoint.
type NodeData struct {
	Document Node             `json:"document"`
	Styles   map[string]Style `json:"styles,omitempty"`
}

// StylesResponse represents the response from the published styles endpoint.
type StylesResponse struct {
	Status int  `json:"status"`
	Error  bool `json:"error"`
	Meta   Meta `json:"meta"`
}

// Meta contains the published style list of a file.
type Meta struct {
	Styles []StyleMetadata `json:"styles"`
}

// StyleMetadata describes one published style: its name, its kind
// (FILL, TEXT, EFFECT or GRID) and the node that holds its definition.
type StyleMetadata struct {
	Key         string `json:"key"`
	FileKey     string `json:"file_key"`
	NodeID      string `json:"node_id"`
	StyleType   string `json:"style_type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Style is the short style description embedded in file and node responses.
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StyleType   string `json:"styleType"`
}

// Node is a single element of the Figma document tree.
// StyleType is only set on nodes of type STYLE.
type Node struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	StyleType string     `json:"style_type,omitempty"`
	Children  []Node     `json:"children,omitempty"`
	Fills     []Paint    `json:"fills,omitempty"`
	Style     *TypeStyle `json:"style,omitempty"`
}

// Color is an RGBA color with channels in the 0..1 range.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint is a fill or stroke. Opacity is nil when Figma omits it, which means fully opaque.
type Paint struct {
	Type    string   `json:"type"`
	Opacity *float64 `json:"opacity,omitempty"`
	Color   *Color   `json:"color,omitempty"`
}

// TypeStyle holds the text attributes of a TEXT node or text style.
// Zero values mean the attribute was not set.
type TypeStyle struct {
	FontFamily                string  `json:"fontFamily,omitempty"`
	FontPostScriptName        string  `json:"fontPostScriptName,omitempty"`
	FontWeight                float64 `json:"fontWeight,omitempty"`
	FontSize                  float64 `json:"fontSize,omitempty"`
	LineHeightPx              float64 `json:"lineHeightPx,omitempty"`
	LineHeightPercentFontSize float64 `json:"lineHeightPercentFontSize,omitempty"`
	LetterSpacing             float64 `json:"letterSpacing,omitempty"`
	TextCase                  string  `json:"textCase,omitempty"`
	TextDecoration            string  `json:"textDecoration,omitempty"`
}
