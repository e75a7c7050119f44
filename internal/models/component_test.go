package models

import "testing"

func TestComponentCategoryValid(t *testing.T) {
	valid := []ComponentCategory{ComponentHeader, ComponentFooter, ComponentNavigation}
	for _, c := range valid {
		if !c.Valid() {
			t.Errorf("category %q should be valid", c)
		}
	}

	invalid := []ComponentCategory{"", "sidebar", "Header", "HEADER", "nav"}
	for _, c := range invalid {
		if c.Valid() {
			t.Errorf("category %q should be invalid", c)
		}
	}
}

func TestContentFormatValid(t *testing.T) {
	if !ContentFormatHTML.Valid() || !ContentFormatMarkdown.Valid() {
		t.Error("known content formats should be valid")
	}
	for _, f := range []ContentFormat{"", "text", "Markdown", "md"} {
		if f.Valid() {
			t.Errorf("format %q should be invalid", f)
		}
	}
}
