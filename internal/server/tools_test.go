package server

import "testing"

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	want := []string{
		"analyze_image",
		"get_image_orientation",
		"count_colors",
		"extract_text_info",
	}
	if len(tools) != len(want) {
		t.Fatalf("tool count: got %d, want %d", len(tools), len(want))
	}
	for i, name := range want {
		if tools[i].Name != name {
			t.Errorf("tools[%d]: got %s, want %s", i, tools[i].Name, name)
		}
	}
}

func TestToolDefinitions_RequireImage(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("description is empty")
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("schema has no properties")
			}
			if _, ok := props["image"]; !ok {
				t.Error("schema missing image property")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("schema has no required list")
			}
			found := false
			for _, r := range required {
				if r == "image" {
					found = true
				}
			}
			if !found {
				t.Error("image is not required")
			}
		})
	}
}

func TestToolDefinitions_CountColorsOptions(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Name != "count_colors" {
			continue
		}
		props := tool.InputSchema["properties"].(map[string]interface{})
		if _, ok := props["sample_limit"]; !ok {
			t.Error("count_colors schema missing sample_limit")
		}
		if _, ok := props["top_n"]; !ok {
			t.Error("count_colors schema missing top_n")
		}
		return
	}
	t.Fatal("count_colors tool not found")
}
