package schema

// Clone returns a deep copy of the schema. Derived views mutate their copy
// freely without touching the canonical document.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}

	out := *s
	out.Metadata.CMS = cloneCMS(s.Metadata.CMS)
	out.Colors.Palette = cloneStrings(s.Colors.Palette)
	out.Typography.Headings = cloneHeadings(s.Typography.Headings)
	out.Typography.FontImports = cloneStrings(s.Typography.FontImports)
	out.Layout.PageDimensions.Width = cloneFloat(s.Layout.PageDimensions.Width)
	out.Layout.PageDimensions.Height = cloneFloat(s.Layout.PageDimensions.Height)
	out.Layout.ContainerWidth = cloneFloat(s.Layout.ContainerWidth)
	out.Layout.CommonSpacingUnits = cloneStrings(s.Layout.CommonSpacingUnits)
	out.Components.DetectedCSSPatterns = cloneStrings(s.Components.DetectedCSSPatterns)
	out.Components.Sidebar = cloneSidebar(s.Components.Sidebar)
	out.Images.IconClassesFound = cloneStrings(s.Images.IconClassesFound)
	out.Images.LogoURL = cloneString(s.Images.LogoURL)
	out.DesignSummary.StyleKeywords = cloneStrings(s.DesignSummary.StyleKeywords)
	out.AIConsumption = cloneAI(s.AIConsumption)
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneFloat(in *float64) *float64 {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func cloneString(in *string) *string {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func cloneCMS(in *CMSInfo) *CMSInfo {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func cloneSidebar(in *SidebarInfo) *SidebarInfo {
	if in == nil {
		return nil
	}
	v := *in
	v.Width = cloneFloat(in.Width)
	return &v
}

func cloneHeadings(in map[string]HeadingFont) map[string]HeadingFont {
	if in == nil {
		return nil
	}
	out := make(map[string]HeadingFont, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneAI(in *AIConsumption) *AIConsumption {
	if in == nil {
		return nil
	}
	v := *in
	v.SuggestedPromptElements = cloneStrings(in.SuggestedPromptElements)
	v.FullPaletteHex = cloneStrings(in.FullPaletteHex)
	return &v
}
