package clay

// HelperDefinition describes one helper function offered by the completion
// engine. Name is a stable contract with downstream tooling; Snippet uses
// LSP snippet syntax with ordered placeholder slots.
type HelperDefinition struct {
	Name          string
	Signature     string
	Documentation string
	Snippet       string
	Common        bool
}

// Catalog is the fixed, ordered set of Clay helpers. The order is
// hand-curated (string transforms, control flow, comparison, loops,
// utilities, built-ins) and is preserved within each priority tier when
// suggestions are ranked. Do not reorder or rename entries.
var Catalog = []HelperDefinition{
	// string transforms
	{
		Name:          "camelCase",
		Signature:     "camelCase value",
		Documentation: "Converts `value` to camelCase, e.g. `{{camelCase \"user name\"}}` renders `userName`.",
		Snippet:       "camelCase ${1:value}",
		Common:        true,
	},
	{
		Name:          "pascalCase",
		Signature:     "pascalCase value",
		Documentation: "Converts `value` to PascalCase, e.g. `{{pascalCase \"user name\"}}` renders `UserName`.",
		Snippet:       "pascalCase ${1:value}",
		Common:        true,
	},
	{
		Name:          "snakeCase",
		Signature:     "snakeCase value",
		Documentation: "Converts `value` to snake_case, e.g. `{{snakeCase \"user name\"}}` renders `user_name`.",
		Snippet:       "snakeCase ${1:value}",
	},
	{
		Name:          "kebabCase",
		Signature:     "kebabCase value",
		Documentation: "Converts `value` to kebab-case, e.g. `{{kebabCase \"user name\"}}` renders `user-name`.",
		Snippet:       "kebabCase ${1:value}",
	},
	{
		Name:          "upperCase",
		Signature:     "upperCase value",
		Documentation: "Uppercases every character of `value`.",
		Snippet:       "upperCase ${1:value}",
	},
	{
		Name:          "lowerCase",
		Signature:     "lowerCase value",
		Documentation: "Lowercases every character of `value`.",
		Snippet:       "lowerCase ${1:value}",
	},
	{
		Name:          "capitalize",
		Signature:     "capitalize value",
		Documentation: "Uppercases the first character of `value`, leaving the rest untouched.",
		Snippet:       "capitalize ${1:value}",
	},
	{
		Name:          "pluralize",
		Signature:     "pluralize value",
		Documentation: "Returns the plural form of the English word `value`.",
		Snippet:       "pluralize ${1:value}",
	},
	{
		Name:          "singularize",
		Signature:     "singularize value",
		Documentation: "Returns the singular form of the English word `value`.",
		Snippet:       "singularize ${1:value}",
	},
	// control flow
	{
		Name:          "if",
		Signature:     "if condition",
		Documentation: "Renders the enclosed block when `condition` is truthy. Close with `{{end}}`.",
		Snippet:       "if ${1:condition}",
		Common:        true,
	},
	{
		Name:          "else",
		Signature:     "else",
		Documentation: "Alternative branch of an enclosing `if`, `unless` or `each` block.",
		Snippet:       "else",
	},
	{
		Name:          "unless",
		Signature:     "unless condition",
		Documentation: "Renders the enclosed block when `condition` is falsy. Close with `{{end}}`.",
		Snippet:       "unless ${1:condition}",
	},
	{
		Name:          "with",
		Signature:     "with value",
		Documentation: "Rebinds the context to `value` for the enclosed block. Close with `{{end}}`.",
		Snippet:       "with ${1:value}",
	},
	// comparison
	{
		Name:          "eq",
		Signature:     "eq a b",
		Documentation: "True when `a` equals `b`.",
		Snippet:       "eq ${1:a} ${2:b}",
		Common:        true,
	},
	{
		Name:          "ne",
		Signature:     "ne a b",
		Documentation: "True when `a` does not equal `b`.",
		Snippet:       "ne ${1:a} ${2:b}",
	},
	{
		Name:          "lt",
		Signature:     "lt a b",
		Documentation: "True when `a` is strictly less than `b`.",
		Snippet:       "lt ${1:a} ${2:b}",
	},
	{
		Name:          "gt",
		Signature:     "gt a b",
		Documentation: "True when `a` is strictly greater than `b`.",
		Snippet:       "gt ${1:a} ${2:b}",
	},
	{
		Name:          "and",
		Signature:     "and a b",
		Documentation: "True when both `a` and `b` are truthy.",
		Snippet:       "and ${1:a} ${2:b}",
	},
	{
		Name:          "or",
		Signature:     "or a b",
		Documentation: "True when at least one of `a` and `b` is truthy.",
		Snippet:       "or ${1:a} ${2:b}",
	},
	{
		Name:          "not",
		Signature:     "not value",
		Documentation: "Boolean negation of `value`.",
		Snippet:       "not ${1:value}",
	},
	// loops
	{
		Name:          "each",
		Signature:     "each collection",
		Documentation: "Renders the enclosed block once per element of `collection`. Close with `{{end}}`.",
		Snippet:       "each ${1:collection}",
		Common:        true,
	},
	{
		Name:          "range",
		Signature:     "range start end",
		Documentation: "Renders the enclosed block for each integer from `start` up to but excluding `end`. Close with `{{end}}`.",
		Snippet:       "range ${1:start} ${2:end}",
	},
	// utilities
	{
		Name:          "default",
		Signature:     "default value fallback",
		Documentation: "Renders `value` when it is non-empty, otherwise `fallback`.",
		Snippet:       "default ${1:value} ${2:fallback}",
	},
	{
		Name:          "json",
		Signature:     "json value",
		Documentation: "Serializes `value` as JSON.",
		Snippet:       "json ${1:value}",
	},
	// built-ins
	{
		Name:          "len",
		Signature:     "len value",
		Documentation: "Length of a string or collection `value`.",
		Snippet:       "len ${1:value}",
	},
	{
		Name:          "printf",
		Signature:     "printf format args...",
		Documentation: "Formats `args` according to the printf-style `format` string.",
		Snippet:       "printf ${1:format} ${2:args}",
	},
}
