package queries

import (
	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/pkg/errs"
)

func normalizeTableCode(code string) (string, error) {
	code = catalog.NormalizeCode(code)
	if code == "" {
		return "", errs.NewValueIsRequiredError("table code")
	}
	return code, nil
}
