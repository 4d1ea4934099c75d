package compare

// ChangeType names the kind of difference a ChangeRecord describes.
type ChangeType string

const (
	ChangeAdded              ChangeType = "added"
	ChangeRemoved            ChangeType = "removed"
	ChangeTypeChanged        ChangeType = "type"
	ChangeDefaultValue       ChangeType = "defaultValue"
	ChangeDeprecation        ChangeType = "deprecation"
	ChangeName               ChangeType = "name"
	ChangeModulePath         ChangeType = "modulePath"
	ChangeDefinitionPath     ChangeType = "definitionPath"
	ChangeTypeDefinitionPath ChangeType = "typeDefinitionPath"
)

// ChangeRecord is the structured form of one changelog sentence.
type ChangeRecord struct {
	API        string     `json:"api"`
	ChangeType ChangeType `json:"changeType"`
	Name       string     `json:"name,omitempty"`
	OldValue   any        `json:"oldValue,omitempty"`
	NewValue   any        `json:"newValue,omitempty"`
}

// ChangeList maps component tag names to changelog sentences.
type ChangeList struct {
	BreakingChanges map[string][]string `json:"breakingChanges"`
	FeatureChanges  map[string][]string `json:"featureChanges"`
}

// RawDataChangeList maps component tag names to structured change records.
type RawDataChangeList struct {
	BreakingChanges map[string][]ChangeRecord `json:"breakingChanges"`
	FeatureChanges  map[string][]ChangeRecord `json:"featureChanges"`
}

// Result is the output of one manifest comparison. Tags without changes are
// never present as keys.
type Result struct {
	Changelog ChangeList        `json:"changelog"`
	RawData   RawDataChangeList `json:"rawData"`
}
