package compare

import "github.com/wc-toolkit/cem-changelog/manifest"

// missingTag keys components declared without a tag name.
const missingTag = "MissingTag"

// componentIndex maps tag names to components. When a manifest declares a tag
// twice the last declaration wins; tags keep their first-appearance order.
type componentIndex struct {
	tags       []string
	components map[string]manifest.Component
}

func indexComponents(components []manifest.Component) componentIndex {
	idx := componentIndex{components: make(map[string]manifest.Component, len(components))}
	for _, c := range components {
		tag := tagOf(c)
		if _, seen := idx.components[tag]; !seen {
			idx.tags = append(idx.tags, tag)
		}
		idx.components[tag] = c
	}
	return idx
}

func (idx componentIndex) get(tag string) (manifest.Component, bool) {
	c, ok := idx.components[tag]
	return c, ok
}

func tagOf(c manifest.Component) string {
	if c.TagName == "" {
		return missingTag
	}
	return c.TagName
}
