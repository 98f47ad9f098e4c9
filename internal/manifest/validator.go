package manifest

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/inkwell/internal/style"
	inkwellerrors "github.com/alexisbeaulieu97/inkwell/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern       = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	commandNamePattern  = regexp.MustCompile(`^[a-z0-9][a-z0-9 _-]*$`)
	componentKeyPattern = regexp.MustCompile(`^[a-z0-9_-]+(?:\.[a-z0-9_-]+)*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("command_name", func(fl validator.FieldLevel) bool {
			return commandNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("component_key", func(fl validator.FieldLevel) bool {
			return componentKeyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-entry validation on the manifest.
// Component default-command lists may reference names the manifest does not
// declare: deployments routinely extend the built-in library, and unknown
// names resolve to empty fragments at runtime anyway.
func Validate(m *Manifest) error {
	if m == nil {
		return inkwellerrors.NewValidationError("manifest", "manifest is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(m); err != nil {
		return convertValidationError(err)
	}

	seenCommands := make(map[string]struct{}, len(m.Commands))
	for i, entry := range m.Commands {
		name := strings.ToLower(entry.Name)
		if _, exists := seenCommands[name]; exists {
			return inkwellerrors.NewValidationError(
				fmt.Sprintf("commands[%d].name", i),
				fmt.Sprintf("duplicate command name %q", entry.Name), nil)
		}
		seenCommands[name] = struct{}{}

		if err := validateFragment(fmt.Sprintf("commands[%d].style", i), entry.Style); err != nil {
			return err
		}
	}

	seenKeys := make(map[string]struct{}, len(m.Components))
	for i, entry := range m.Components {
		if _, exists := seenKeys[entry.Key]; exists {
			return inkwellerrors.NewValidationError(
				fmt.Sprintf("components[%d].key", i),
				fmt.Sprintf("duplicate component key %q", entry.Key), nil)
		}
		seenKeys[entry.Key] = struct{}{}

		if err := validateFragment(fmt.Sprintf("components[%d].base", i), entry.Base); err != nil {
			return err
		}
	}

	return nil
}

// validateFragment enforces the closed leaf variant: strings, numbers,
// booleans, arrays of those, and nested mappings. Anything else (nulls,
// timestamps, binary nodes) is rejected at load time so merge semantics stay
// well-defined.
func validateFragment(field string, fragment style.Fragment) error {
	for key, value := range fragment {
		if err := validateValue(field+"."+key, value); err != nil {
			return err
		}
	}
	return nil
}

func validateValue(field string, value any) error {
	switch v := value.(type) {
	case string, bool, int, int64, uint64, float64:
		return nil
	case style.Fragment:
		return validateFragment(field, v)
	case map[string]any:
		return validateFragment(field, style.Fragment(v))
	case []any:
		for i, item := range v {
			switch item.(type) {
			case string, bool, int, int64, uint64, float64:
			default:
				return inkwellerrors.NewValidationError(
					fmt.Sprintf("%s[%d]", field, i),
					fmt.Sprintf("unsupported array element type %T", item), nil)
			}
		}
		return nil
	default:
		return inkwellerrors.NewValidationError(field,
			fmt.Sprintf("unsupported style value type %T", value), nil)
	}
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := ve.Namespace()
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return inkwellerrors.NewValidationError(field, msg, err)
	}

	return inkwellerrors.NewValidationError("manifest", err.Error(), err)
}
