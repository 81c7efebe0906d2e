package mcp

// HitTestInput is the input for the hit_test tool.
type HitTestInput struct {
	X int `json:"x" jsonschema:"required,Horizontal position in window coordinates"`
	Y int `json:"y" jsonschema:"required,Vertical position in window coordinates"`
}

// HitTestOutput is the output for the hit_test tool.
type HitTestOutput struct {
	Region    string `json:"region"`
	Button    string `json:"button,omitempty"`
	Draggable bool   `json:"draggable"`
}

// ListItemsInput is the input for the list_items tool.
type ListItemsInput struct{}

// ItemInfo describes one scene item.
type ItemInfo struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Hidden   bool   `json:"hidden"`
	Disabled bool   `json:"disabled"`
}

// ListItemsOutput is the output for the list_items tool.
type ListItemsOutput struct {
	Items []ItemInfo `json:"items"`
}

// SetItemStateInput is the input for the set_item_state tool.
type SetItemStateInput struct {
	Name     string `json:"name" jsonschema:"required,Item name as listed by list_items"`
	Hidden   *bool  `json:"hidden,omitempty" jsonschema:"Hide or show the item"`
	Disabled *bool  `json:"disabled,omitempty" jsonschema:"Disable or enable the item"`
}

// MoveItemInput is the input for the move_item tool.
type MoveItemInput struct {
	Name   string `json:"name" jsonschema:"required,Item name as listed by list_items"`
	X      int    `json:"x" jsonschema:"required,New left edge"`
	Y      int    `json:"y" jsonschema:"required,New top edge"`
	Width  int    `json:"width" jsonschema:"required,New width"`
	Height int    `json:"height" jsonschema:"required,New height"`
}

// RemoveItemInput is the input for the remove_item tool.
type RemoveItemInput struct {
	Name string `json:"name" jsonschema:"required,Item name as listed by list_items"`
}

// ItemOutput is returned by tools that change a single item.
type ItemOutput struct {
	Item    ItemInfo `json:"item"`
	Removed bool     `json:"removed,omitempty"`
}

// RenderMapInput is the input for the render_map tool.
type RenderMapInput struct {
	Cell int `json:"cell,omitempty" jsonschema:"Cell width in window pixels (default: 10)"`
}

// RenderMapOutput is the output for the render_map tool.
type RenderMapOutput struct {
	Map    string `json:"map"`
	Legend string `json:"legend"`
}

// SetAttributeInput is the input for the set_attribute tool.
type SetAttributeInput struct {
	Key   string `json:"key" jsonschema:"required,Attribute name (e.g. theme-variant)"`
	Value any    `json:"value,omitempty" jsonschema:"New value; omit or null to clear"`
}

// SetAttributeOutput is the output for the set_attribute tool.
type SetAttributeOutput struct {
	Key     string `json:"key"`
	Value   any    `json:"value,omitempty"`
	Changed bool   `json:"changed"`
}

// DefaultColorsInput is the input for the default_colors tool.
type DefaultColorsInput struct{}

// DefaultColorsOutput maps palette tokens to #rrggbbaa strings.
type DefaultColorsOutput struct {
	Colors map[string]string `json:"colors"`
}
