package validation

import (
	"sort"
	"strings"
)

// Validator checks struct tags and returns one message per failing field, or nil.
type Validator interface {
	ValidateStruct(s any) map[string]string
}

// Summary joins the messages of errs in field order.
func Summary(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, errs[f])
	}

	return strings.Join(msgs, "; ")
}
