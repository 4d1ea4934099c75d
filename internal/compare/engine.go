package compare

import (
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/logging"

	"github.com/wc-toolkit/cem-changelog/manifest"
)

// InvalidInputError reports manifests that cannot be compared at all.
type InvalidInputError struct {
	msg string
}

func (e *InvalidInputError) Error() string {
	return e.msg
}

var (
	// ErrManifestsRequired is returned when either manifest is nil.
	ErrManifestsRequired = &InvalidInputError{msg: "Both old and new manifests must be provided."}
	// ErrComponentsRequired is returned when either manifest declares no components.
	ErrComponentsRequired = &InvalidInputError{msg: "Both old and new manifests must have components."}
)

// Engine compares manifests under a fixed configuration. It holds no
// per-comparison state and is safe for concurrent use.
type Engine struct {
	config    Config
	policy    policy
	extractor manifest.Extractor
}

// NewEngine returns an engine reading components through extractor.
func NewEngine(config Config, extractor manifest.Extractor) *Engine {
	contract.Requiref(extractor != nil, "extractor", "must not be nil")
	config = config.withDefaults()
	return &Engine{
		config:    config,
		policy:    policy{config: config},
		extractor: extractor,
	}
}

// Compare computes the changelog between oldManifest and newManifest.
func (e *Engine) Compare(oldManifest, newManifest *manifest.Manifest) (Result, error) {
	if oldManifest == nil || newManifest == nil {
		return Result{}, ErrManifestsRequired
	}

	oldComponents := e.extractor.ListComponents(oldManifest)
	newComponents := e.extractor.ListComponents(newManifest)
	if len(oldComponents) == 0 || len(newComponents) == 0 {
		return Result{}, ErrComponentsRequired
	}

	oldIndex := indexComponents(oldComponents)
	newIndex := indexComponents(newComponents)
	log := newChangelog()

	for _, tag := range oldIndex.tags {
		if _, ok := newIndex.get(tag); ok {
			continue
		}
		oldComponent, _ := oldIndex.get(tag)
		log.emit(breaking, tag, componentRemovedMsg, ChangeRecord{
			API:        componentAPI,
			ChangeType: ChangeRemoved,
			Name:       oldComponent.Name,
		})
	}

	for _, tag := range newIndex.tags {
		if _, ok := oldIndex.get(tag); ok {
			continue
		}
		newComponent, _ := newIndex.get(tag)
		log.emit(feature, tag, componentAddedMsg, ChangeRecord{
			API:        componentAPI,
			ChangeType: ChangeAdded,
			Name:       newComponent.Name,
		})
	}

	for _, tag := range newIndex.tags {
		oldComponent, ok := oldIndex.get(tag)
		if !ok {
			continue
		}
		newComponent, _ := newIndex.get(tag)
		log.open(tag)
		e.compareComponent(log, tag, oldComponent, newComponent)
		logging.V(9).Infof("compared %s", tag)
	}

	log.prune()
	logging.V(5).Infof("found %d breaking and %d feature changes across %d components",
		log.count(breaking), log.count(feature), len(newIndex.tags))
	return log.result(), nil
}

func (e *Engine) compareComponent(log *changelog, tag string, oldComponent, newComponent manifest.Component) {
	e.compareComponentFields(log, tag, oldComponent, newComponent)
	for _, s := range surfaces {
		e.compareCollection(log, s, tag,
			s.members(e.extractor, oldComponent),
			s.members(e.extractor, newComponent))
	}
}

func (e *Engine) compareComponentFields(log *changelog, tag string, oldComponent, newComponent manifest.Component) {
	field := func(changeType ChangeType, oldValue, newValue any) ChangeRecord {
		return ChangeRecord{
			API:        componentAPI,
			ChangeType: changeType,
			Name:       tag,
			OldValue:   oldValue,
			NewValue:   newValue,
		}
	}

	if oldComponent.Name != newComponent.Name {
		log.emit(breaking, tag, classNameChanged(oldComponent.Name, newComponent.Name),
			field(ChangeName, oldComponent.Name, newComponent.Name))
	}
	if oldComponent.ModulePath != newComponent.ModulePath {
		log.emit(breaking, tag, modulePathChanged(newComponent.ModulePath),
			field(ChangeModulePath, oldComponent.ModulePath, newComponent.ModulePath))
	}
	if oldComponent.DefinitionPath != newComponent.DefinitionPath {
		log.emit(breaking, tag, definitionPathChanged(newComponent.DefinitionPath),
			field(ChangeDefinitionPath, oldComponent.DefinitionPath, newComponent.DefinitionPath))
	}
	if oldComponent.TypeDefinitionPath != newComponent.TypeDefinitionPath {
		log.emit(breaking, tag, typeDefinitionPathChanged(newComponent.TypeDefinitionPath),
			field(ChangeTypeDefinitionPath, oldComponent.TypeDefinitionPath, newComponent.TypeDefinitionPath))
	}
	if !oldComponent.Deprecated.Equal(newComponent.Deprecated) {
		log.emit(feature, tag, componentDeprecationChanged(e.policy.deprecationSuffix(newComponent.Deprecated)),
			field(ChangeDeprecation, oldComponent.Deprecated.Interface(), newComponent.Deprecated.Interface()))
	}
}
