package patch

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/inventoryhub/inventory-backend/pkg/errors"
	"github.com/google/uuid"
)

// Target applies whitelisted field updates from a partial payload. Set reports
// false for unknown fields, which the merge silently skips.
type Target interface {
	Set(field string, value any) (bool, error)
}

// Relation describes the many-to-many side of a merge. Count must report how
// many of the given ids exist; Attach appends them without removing existing
// associations.
type Relation struct {
	Key    string
	Label  string
	Count  func(ctx context.Context, ids []uuid.UUID) (int64, error)
	Attach func(ctx context.Context, ids []uuid.UUID) error
}

// Merge applies a partial field->value payload to target and attaches any
// related ids named under rel.Key. Unknown fields are ignored rather than
// rejected. The related ids are validated with an exact count match before
// anything is attached, so an invalid id leaves the association untouched.
func Merge(ctx context.Context, data map[string]any, target Target, rel Relation) error {
	if len(data) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "no data passed")
	}

	relRaw, hasRelated := data[rel.Key]

	updated := false
	for field, value := range data {
		if field == rel.Key {
			continue
		}
		ok, err := target.Set(field, value)
		if err != nil {
			return err
		}
		if ok {
			updated = true
		}
	}

	if hasRelated {
		ids, err := ParseIDList(relRaw, rel.Label)
		if err != nil {
			return err
		}
		if len(ids) > 0 {
			found, err := rel.Count(ctx, ids)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("checking %s ids", rel.Label))
			}
			if found != int64(len(ids)) {
				return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("some %s ids do not exist", rel.Label))
			}
			if err := rel.Attach(ctx, ids); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("attaching %s", rel.Key))
			}
			updated = true
		}
	}

	if !updated {
		return pkgerrors.New(pkgerrors.CodeValidation, "nothing to update")
	}
	return nil
}

// ParseIDList accepts the payload shapes relation ids arrive in: a JSON array
// of id strings or a single ", "-delimited string.
func ParseIDList(value any, label string) ([]uuid.UUID, error) {
	switch typed := value.(type) {
	case nil:
		return nil, nil
	case string:
		if strings.TrimSpace(typed) == "" {
			return nil, nil
		}
		return parseIDStrings(strings.Split(typed, ", "), label)
	case []string:
		return parseIDStrings(typed, label)
	case []any:
		raw := make([]string, 0, len(typed))
		for _, v := range typed {
			s, ok := v.(string)
			if !ok {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s ids must be strings", label))
			}
			raw = append(raw, s)
		}
		return parseIDStrings(raw, label)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be a list of ids", label))
	}
}

func parseIDStrings(raw []string, label string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("invalid %s id %q", label, s))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
