package repository

import (
	"fmt"
	"strings"

	"whiteboard/internal/models"
	"whiteboard/internal/shared"

	"github.com/Masterminds/squirrel"
)

// visibleTo builds the ownership filter shared by every owner-scoped
// listing: rows of the distinguished shared owner (user 1) are visible
// to all callers in addition to the caller's own rows.
func visibleTo(ownerID int64) squirrel.Or {
	return squirrel.Or{
		squirrel.Eq{"userId": models.SharedOwnerID},
		squirrel.Eq{"userId": ownerID},
	}
}

// orderClause whitelists the sort column and normalizes the direction.
// Column and direction come from the caller, so neither may be spliced
// into SQL without this check.
func orderClause(column, direction string, allowed map[string]bool) (string, error) {
	if !allowed[column] {
		return "", shared.NewInvalidAttribute("order_by")
	}
	dir := strings.ToUpper(direction)
	if dir == "" {
		dir = "ASC"
	}
	if dir != "ASC" && dir != "DESC" {
		return "", shared.NewInvalidAttribute("direction")
	}
	return fmt.Sprintf("%s %s", column, dir), nil
}
