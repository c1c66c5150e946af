package resource

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Op is a store-agnostic comparison. Stores translate clauses into their
// own filter language.
type Op int

const (
	OpEq Op = iota
	// OpContains is a case-insensitive substring match.
	OpContains
	OpGte
	OpLte
	// OpHasAny matches list-valued columns holding at least one of Value ([]string).
	OpHasAny
)

type Clause struct {
	Field string
	Op    Op
	Value any
}

func Eq(field string, value any) Clause {
	return Clause{Field: field, Op: OpEq, Value: value}
}

func Contains(field, value string) Clause {
	return Clause{Field: field, Op: OpContains, Value: value}
}

func Gte(field string, value any) Clause {
	return Clause{Field: field, Op: OpGte, Value: value}
}

func Lte(field string, value any) Clause {
	return Clause{Field: field, Op: OpLte, Value: value}
}

func HasAny(field string, values []string) Clause {
	return Clause{Field: field, Op: OpHasAny, Value: values}
}

type Sort struct {
	Field string
	Desc  bool
}

// Query is what a Store executes for list and search.
type Query struct {
	Clauses      []Clause
	Search       string
	SearchFields []string
	Sort         Sort
	Offset       int
	Limit        int
}

// ListParams are the caller-facing list options.
type ListParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string
	Filters   []Clause
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// NormalizePage clamps page to >= 1 and limit to 1..MaxLimit; zero or
// negative values fall back to the defaults.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
