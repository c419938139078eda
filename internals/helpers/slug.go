package helper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const slugMaxLen = 80

// Slugify is deterministic: the same name always yields the same slug.
func Slugify(s string) string {
	out := slug.Make(strings.TrimSpace(s))
	if len(out) > slugMaxLen {
		out = strings.Trim(out[:slugMaxLen], "-")
	}
	if out == "" {
		out = "item"
	}
	return out
}

// EnsureUniqueSlug returns base, or base-2, base-3 ... when taken in
// table.column. excludeID skips the row being updated (uuid.Nil = none).
func EnsureUniqueSlug(
	ctx context.Context,
	db *gorm.DB,
	table string,
	column string,
	base string,
	excludeID uuid.UUID,
) (string, error) {
	candidate := base
	for i := 0; i < 25; i++ {
		q := db.WithContext(ctx).Table(table).
			Where(fmt.Sprintf("LOWER(%s) = ?", column), strings.ToLower(candidate))
		if excludeID != uuid.Nil {
			q = q.Where("id <> ?", excludeID)
		}

		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}

		suffix := fmt.Sprintf("-%d", i+2)
		candidate = trimForSuffix(base, suffix) + suffix
	}

	r := fmt.Sprintf("-%x", time.Now().UnixNano()&0xffff)
	return trimForSuffix(base, r) + r, nil
}

func trimForSuffix(base, suffix string) string {
	keep := slugMaxLen - len(suffix)
	if len(base) > keep {
		base = base[:keep]
	}
	out := strings.Trim(base, "-")
	if out == "" {
		out = "x"
	}
	return out
}
