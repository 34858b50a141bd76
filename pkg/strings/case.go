package strings

import "github.com/iancoleman/strcase"

// ToScreamingSnakeCase maps a destination name such as "billup-api" to an env prefix "BILLUP_API".
func ToScreamingSnakeCase(s string) string {
	return strcase.ToScreamingSnake(s)
}
