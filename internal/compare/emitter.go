package compare

// changelog accumulates the output of a single Compare call. Each sentence is
// written together with its records so the prose and raw lists of a bucket
// never drift apart.
type changelog struct {
	prose [2]map[string][]string
	raw   [2]map[string][]ChangeRecord
}

func newChangelog() *changelog {
	c := &changelog{}
	for _, b := range []bucket{breaking, feature} {
		c.prose[b] = map[string][]string{}
		c.raw[b] = map[string][]ChangeRecord{}
	}
	return c
}

// open makes tag present in every list so a compared component is recorded
// even when it has no changes; prune removes it again.
func (c *changelog) open(tag string) {
	for _, b := range []bucket{breaking, feature} {
		if _, ok := c.prose[b][tag]; !ok {
			c.prose[b][tag] = []string{}
		}
		if _, ok := c.raw[b][tag]; !ok {
			c.raw[b][tag] = []ChangeRecord{}
		}
	}
}

func (c *changelog) emit(b bucket, tag, message string, records ...ChangeRecord) {
	c.prose[b][tag] = append(c.prose[b][tag], message)
	c.raw[b][tag] = append(c.raw[b][tag], records...)
}

// prune drops empty tag entries from each of the four lists independently.
func (c *changelog) prune() {
	for _, b := range []bucket{breaking, feature} {
		for tag, messages := range c.prose[b] {
			if len(messages) == 0 {
				delete(c.prose[b], tag)
			}
		}
		for tag, records := range c.raw[b] {
			if len(records) == 0 {
				delete(c.raw[b], tag)
			}
		}
	}
}

func (c *changelog) result() Result {
	return Result{
		Changelog: ChangeList{
			BreakingChanges: c.prose[breaking],
			FeatureChanges:  c.prose[feature],
		},
		RawData: RawDataChangeList{
			BreakingChanges: c.raw[breaking],
			FeatureChanges:  c.raw[feature],
		},
	}
}

func (c *changelog) count(b bucket) int {
	n := 0
	for _, messages := range c.prose[b] {
		n += len(messages)
	}
	return n
}
