// Package steps declares the stages of the site generation pipeline and their dependencies.
package steps

import (
	"fmt"
	"sort"
)

// Stage names
const (
	ValidateProfile    = "validate_profile"
	AnalyzeBusiness    = "analyze_business"
	GenerateStructure  = "generate_structure"
	CreateDesignSystem = "create_design_system"
	GenerateContent    = "generate_content"
	RenderStylesheet   = "render_stylesheet"
	BuildDocument      = "build_document"
	MergeStylesheet    = "merge_stylesheet"
)

// Stage categories
const (
	CategoryInput     = "input"
	CategoryStructure = "structure"
	CategoryDesign    = "design"
	CategoryCopy      = "copy"
	CategoryAssembly  = "assembly"
)

// StepDefinition defines metadata for a pipeline stage
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
}

// StepRegistry holds all stage definitions
var StepRegistry = map[string]StepDefinition{
	ValidateProfile: {
		Name:         ValidateProfile,
		Category:     CategoryInput,
		Dependencies: []string{},
	},
	AnalyzeBusiness: {
		Name:         AnalyzeBusiness,
		Category:     CategoryStructure,
		Dependencies: []string{ValidateProfile},
	},
	GenerateStructure: {
		Name:         GenerateStructure,
		Category:     CategoryStructure,
		Dependencies: []string{AnalyzeBusiness},
	},
	CreateDesignSystem: {
		Name:         CreateDesignSystem,
		Category:     CategoryDesign,
		Dependencies: []string{GenerateStructure},
	},
	GenerateContent: {
		Name:         GenerateContent,
		Category:     CategoryCopy,
		Dependencies: []string{GenerateStructure},
	},
	RenderStylesheet: {
		Name:         RenderStylesheet,
		Category:     CategoryDesign,
		Dependencies: []string{CreateDesignSystem},
	},
	BuildDocument: {
		Name:         BuildDocument,
		Category:     CategoryAssembly,
		Dependencies: []string{GenerateStructure, CreateDesignSystem, GenerateContent},
	},
	MergeStylesheet: {
		Name:         MergeStylesheet,
		Category:     CategoryAssembly,
		Dependencies: []string{BuildDocument, RenderStylesheet},
	},
}

// CanonicalOrder is the order in which stage names are reported for a run
var CanonicalOrder = []string{
	ValidateProfile,
	AnalyzeBusiness,
	GenerateStructure,
	CreateDesignSystem,
	GenerateContent,
	RenderStylesheet,
	BuildDocument,
	MergeStylesheet,
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("stage %s has missing dependencies: %v", e.Step, e.MissingDependencies)
}

// ValidateDependencies checks that every dependency of stepName is in completed
func ValidateDependencies(completed map[string]bool, stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}
	return nil
}

// ValidateOrder checks that order runs every registered stage exactly once and never
// before its dependencies
func ValidateOrder(order []string) error {
	completed := make(map[string]bool, len(order))
	for _, name := range order {
		if completed[name] {
			return fmt.Errorf("step %s appears more than once", name)
		}
		if err := ValidateDependencies(completed, name); err != nil {
			return err
		}
		completed[name] = true
	}
	if len(completed) != len(StepRegistry) {
		return fmt.Errorf("order covers %d of %d steps", len(completed), len(StepRegistry))
	}
	return nil
}

// GetAvailableSteps returns the stages not yet completed whose dependencies are met, sorted
func GetAvailableSteps(completed map[string]bool) []string {
	var available []string
	for stepName := range StepRegistry {
		if completed[stepName] {
			continue
		}
		if err := ValidateDependencies(completed, stepName); err != nil {
			continue
		}
		available = append(available, stepName)
	}
	sort.Strings(available)
	return available
}

// GetBlockedSteps returns the stages not yet completed whose dependencies are not met, sorted
func GetBlockedSteps(completed map[string]bool) []string {
	var blocked []string
	for stepName := range StepRegistry {
		if completed[stepName] {
			continue
		}
		if err := ValidateDependencies(completed, stepName); err != nil {
			blocked = append(blocked, stepName)
		}
	}
	sort.Strings(blocked)
	return blocked
}
