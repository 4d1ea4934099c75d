package compare

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/wc-toolkit/cem-changelog/manifest"
)

// compareCollection diffs one surface of a component. Members are matched by
// name only; additions and removals are reported first, followed by field
// changes in the order of the new members.
func (e *Engine) compareCollection(log *changelog, s surface, tag string, oldMembers, newMembers []manifest.Member) {
	oldNames := memberNames(oldMembers)
	newNames := memberNames(newMembers)

	var added, removed []string
	for _, m := range newMembers {
		if !oldNames.Contains(m.Name) {
			added = append(added, m.Name)
		}
	}
	for _, m := range oldMembers {
		if !newNames.Contains(m.Name) {
			removed = append(removed, m.Name)
		}
	}

	if len(added) > 0 {
		log.emit(feature, tag, membersAdded(s.label, added), namedRecords(s.label, ChangeAdded, added)...)
	}
	if len(removed) > 0 {
		log.emit(breaking, tag, membersRemoved(s.label, removed), namedRecords(s.label, ChangeRemoved, removed)...)
	}

	oldByName := make(map[string]manifest.Member, len(oldMembers))
	for _, m := range oldMembers {
		if _, ok := oldByName[m.Name]; !ok {
			oldByName[m.Name] = m
		}
	}
	for _, newMember := range newMembers {
		oldMember, ok := oldByName[newMember.Name]
		if !ok {
			continue
		}
		e.compareMember(log, s, tag, oldMember, newMember)
	}
}

func (e *Engine) compareMember(log *changelog, s surface, tag string, oldMember, newMember manifest.Member) {
	name := newMember.Name

	if !oldMember.Deprecated.Equal(newMember.Deprecated) {
		log.emit(feature, tag,
			memberDeprecationChanged(s.label, name, e.policy.deprecationSuffix(newMember.Deprecated)),
			ChangeRecord{
				API:        s.label,
				ChangeType: ChangeDeprecation,
				Name:       name,
				OldValue:   oldMember.Deprecated.Interface(),
				NewValue:   newMember.Deprecated.Interface(),
			})
	}

	if !oldMember.Default.Equal(newMember.Default) {
		log.emit(e.policy.defaultValueChange(), tag,
			defaultValueChanged(s.label, name, oldMember.Default, newMember.Default),
			ChangeRecord{
				API:        s.label,
				ChangeType: ChangeDefaultValue,
				Name:       name,
				OldValue:   oldMember.Default.Interface(),
				NewValue:   newMember.Default.Interface(),
			})
	}

	oldType := oldMember.TypeText(e.config.TypeSrc)
	newType := newMember.TypeText(e.config.TypeSrc)
	if oldType != newType {
		log.emit(e.policy.typeChange(), tag,
			typeChanged(name, oldType, newType),
			ChangeRecord{
				API:        s.label,
				ChangeType: ChangeTypeChanged,
				Name:       name,
				OldValue:   oldType,
				NewValue:   newType,
			})
	}

	if s.compareFieldName && oldMember.FieldName != newMember.FieldName {
		log.emit(breaking, tag,
			fieldNameChanged(s.label, name, oldMember.FieldName, newMember.FieldName),
			ChangeRecord{
				API:        s.label,
				ChangeType: ChangeName,
				Name:       name,
				OldValue:   oldMember.FieldName,
				NewValue:   newMember.FieldName,
			})
	}
}

func memberNames(members []manifest.Member) mapset.Set[string] {
	names := mapset.NewThreadUnsafeSetWithSize[string](len(members))
	for _, m := range members {
		names.Add(m.Name)
	}
	return names
}

func namedRecords(api string, changeType ChangeType, names []string) []ChangeRecord {
	records := make([]ChangeRecord, len(names))
	for i, name := range names {
		records[i] = ChangeRecord{API: api, ChangeType: changeType, Name: name}
	}
	return records
}
