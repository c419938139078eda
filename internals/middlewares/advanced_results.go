package middlewares

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	helper "devcamper_backend/internals/helpers"
)

/* ===============================
   Field whitelist
=================================*/

type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindFloat
	kindBool
	kindUUID
	kindTime
	kindStringArray
	kindOpaque // selectable, not filterable/sortable
)

type Field struct {
	JSON   string
	Column string
	kind   fieldKind
}

// Fields maps the json names of a model to its columns.
type Fields struct {
	byJSON    map[string]Field
	relations map[string]relation
}

type relation struct {
	json       string
	parentCols []string // columns the parent must load for the relation to resolve
}

var (
	schemaCache = &sync.Map{}
	reOperator  = regexp.MustCompile(`^([A-Za-z0-9_]+)\[([A-Za-z]+)\]$`)
	uuidType    = reflect.TypeOf(uuid.UUID{})
	timeType    = reflect.TypeOf(time.Time{})
	strArrType  = reflect.TypeOf(pq.StringArray{})
)

// FieldsOf builds the whitelist from model's json tags and GORM columns.
func FieldsOf(model any) (Fields, error) {
	sch, err := schema.Parse(model, schemaCache, schema.NamingStrategy{})
	if err != nil {
		return Fields{}, err
	}

	out := Fields{byJSON: map[string]Field{}, relations: map[string]relation{}}
	for _, f := range sch.Fields {
		if f.DBName == "" {
			continue
		}
		name := jsonName(f.StructField)
		if name == "" {
			continue
		}
		out.byJSON[name] = Field{JSON: name, Column: f.DBName, kind: kindOf(f.FieldType)}
	}

	for name, rel := range sch.Relationships.Relations {
		r := relation{json: jsonName(rel.Field.StructField)}
		if rel.Type == schema.BelongsTo {
			for _, ref := range rel.References {
				if !ref.OwnPrimaryKey && ref.ForeignKey != nil {
					r.parentCols = append(r.parentCols, ref.ForeignKey.DBName)
				}
			}
		}
		out.relations[name] = r
	}
	return out, nil
}

func MustFieldsOf(model any) Fields {
	f, err := FieldsOf(model)
	if err != nil {
		panic(fmt.Sprintf("advanced results: %v", err))
	}
	return f
}

func (f Fields) Lookup(jsonName string) (Field, bool) {
	fd, ok := f.byJSON[jsonName]
	return fd, ok
}

func jsonName(sf reflect.StructField) string {
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}

func kindOf(t reflect.Type) fieldKind {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch {
	case t == uuidType:
		return kindUUID
	case t == timeType:
		return kindTime
	case t == strArrType:
		return kindStringArray
	}
	switch t.Kind() {
	case reflect.String:
		return kindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return kindInt
	case reflect.Float32, reflect.Float64:
		return kindFloat
	case reflect.Bool:
		return kindBool
	default:
		return kindOpaque
	}
}

func (fd Field) coerce(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch fd.kind {
	case kindString, kindStringArray:
		return raw, nil
	case kindInt:
		return strconv.ParseInt(raw, 10, 64)
	case kindFloat:
		return strconv.ParseFloat(raw, 64)
	case kindBool:
		return strconv.ParseBool(raw)
	case kindUUID:
		return uuid.Parse(raw)
	case kindTime:
		// an unescaped "+07:00" offset arrives as " 07:00"
		raw = strings.Replace(raw, " ", "+", 1)
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		return time.Parse("2006-01-02", raw)
	default:
		return nil, fmt.Errorf("not filterable")
	}
}

/* ===============================
   Query
=================================*/

type Filter struct {
	Column string
	Op     string // eq gt gte lt lte in
	Value  any
	array  bool
}

type SortField struct {
	Column string
	Desc   bool
}

// Query is the parsed form of a list request's query string.
type Query struct {
	Filters []Filter
	Select  []string // json names requested by ?select=
	Columns []string // columns loaded when Select is set
	Sort    []SortField
	Paging  helper.Paging
}

type Options struct {
	Preload       string   // relation field name, e.g. "Courses"
	PreloadSelect []string // relation columns; must include its foreign key
	DefaultLimit  int
	MaxLimit      int
}

var reserved = map[string]bool{"select": true, "sort": true, "page": true, "limit": true}

// ParseQuery validates every key against fields. Unknown fields, unknown
// operators and values that do not fit the field type yield a 400.
func ParseQuery(values url.Values, fields Fields, opts Options) (*Query, error) {
	paging, err := helper.ResolvePaging(values.Get("page"), values.Get("limit"), opts.DefaultLimit, opts.MaxLimit)
	if err != nil {
		return nil, err
	}
	q := &Query{Paging: paging}

	keys := make([]string, 0, len(values))
	for key := range values {
		if !reserved[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		vals := values[key]
		name, op := key, "eq"
		if m := reOperator.FindStringSubmatch(key); m != nil {
			name, op = m[1], strings.ToLower(m[2])
		}
		fd, ok := fields.Lookup(name)
		if !ok {
			return nil, helper.BadRequest("Invalid query field " + name)
		}
		for _, raw := range vals {
			f, err := buildFilter(fd, op, raw)
			if err != nil {
				return nil, err
			}
			q.Filters = append(q.Filters, f)
		}
	}

	if s := strings.TrimSpace(values.Get("select")); s != "" {
		if err := q.parseSelect(s, fields, opts); err != nil {
			return nil, err
		}
	}
	if err := q.parseSort(values.Get("sort"), fields); err != nil {
		return nil, err
	}
	return q, nil
}

func buildFilter(fd Field, op, raw string) (Filter, error) {
	bad := func() (Filter, error) {
		return Filter{}, helper.BadRequest(fmt.Sprintf("Invalid value for %s", fd.JSON))
	}
	if fd.kind == kindOpaque {
		return Filter{}, helper.BadRequest("Cannot filter on " + fd.JSON)
	}

	f := Filter{Column: fd.Column, Op: op, array: fd.kind == kindStringArray}
	switch op {
	case "eq", "gt", "gte", "lt", "lte":
		if f.array && op != "eq" {
			return Filter{}, helper.BadRequest("Invalid query operator " + op + " for " + fd.JSON)
		}
		v, err := fd.coerce(raw)
		if err != nil {
			return bad()
		}
		f.Value = v
	case "in":
		parts := strings.Split(raw, ",")
		list := make([]any, 0, len(parts))
		for _, p := range parts {
			v, err := fd.coerce(p)
			if err != nil {
				return bad()
			}
			list = append(list, v)
		}
		if f.array {
			arr := make(pq.StringArray, 0, len(list))
			for _, v := range list {
				arr = append(arr, v.(string))
			}
			f.Value = arr
		} else {
			f.Value = list
		}
	default:
		return Filter{}, helper.BadRequest("Invalid query operator " + op)
	}
	return f, nil
}

func (q *Query) parseSelect(raw string, fields Fields, opts Options) error {
	seen := map[string]bool{}
	add := func(col string) {
		if !seen[col] {
			seen[col] = true
			q.Columns = append(q.Columns, col)
		}
	}

	add("id")
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		fd, ok := fields.Lookup(name)
		if !ok {
			return helper.BadRequest("Invalid select field " + name)
		}
		q.Select = append(q.Select, name)
		add(fd.Column)
	}
	if rel, ok := fields.relations[opts.Preload]; ok {
		for _, col := range rel.parentCols {
			add(col)
		}
	}
	return nil
}

func (q *Query) parseSort(raw string, fields Fields) error {
	hasID := false
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		desc := strings.HasPrefix(name, "-")
		name = strings.TrimPrefix(name, "-")
		fd, ok := fields.Lookup(name)
		if !ok || fd.kind == kindOpaque || fd.kind == kindStringArray {
			return helper.BadRequest("Invalid sort field " + name)
		}
		q.Sort = append(q.Sort, SortField{Column: fd.Column, Desc: desc})
		hasID = hasID || fd.Column == "id"
	}
	if len(q.Sort) == 0 {
		q.Sort = []SortField{{Column: "created_at"}}
	}
	if !hasID {
		q.Sort = append(q.Sort, SortField{Column: "id"})
	}
	return nil
}

// Where applies the filters only; shared by the count and the page query.
func (q *Query) Where(tx *gorm.DB) *gorm.DB {
	for _, f := range q.Filters {
		col := clause.Column{Name: f.Column}
		switch {
		case f.array && f.Op == "in":
			tx = tx.Where(clause.Expr{SQL: "? && ?", Vars: []any{col, f.Value}})
		case f.array:
			tx = tx.Where(clause.Expr{SQL: "? = ANY(?)", Vars: []any{f.Value, col}})
		case f.Op == "gt":
			tx = tx.Where(clause.Gt{Column: col, Value: f.Value})
		case f.Op == "gte":
			tx = tx.Where(clause.Gte{Column: col, Value: f.Value})
		case f.Op == "lt":
			tx = tx.Where(clause.Lt{Column: col, Value: f.Value})
		case f.Op == "lte":
			tx = tx.Where(clause.Lte{Column: col, Value: f.Value})
		case f.Op == "in":
			tx = tx.Where(clause.IN{Column: col, Values: f.Value.([]any)})
		default:
			tx = tx.Where(clause.Eq{Column: col, Value: f.Value})
		}
	}
	return tx
}

// Page applies select, order and the skip/take window.
func (q *Query) Page(tx *gorm.DB) *gorm.DB {
	if len(q.Columns) > 0 {
		tx = tx.Select(q.Columns)
	}
	for _, s := range q.Sort {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: s.Column}, Desc: s.Desc})
	}
	return tx.Limit(q.Paging.Limit).Offset(q.Paging.Offset())
}

/* ===============================
   Execution + middleware
=================================*/

// Results is what list handlers serialize.
type Results struct {
	Count      int
	Total      int64
	Pagination helper.Pagination
	Data       any
}

func (r *Results) Send(c *fiber.Ctx) error {
	return helper.JsonPaged(c, r.Data, r.Count, r.Total, r.Pagination)
}

// RunQuery counts and loads one page of T.
func RunQuery[T any](ctx context.Context, db *gorm.DB, q *Query, fields Fields, opts Options) (*Results, error) {
	var total int64
	if err := q.Where(db.WithContext(ctx).Model(new(T))).Count(&total).Error; err != nil {
		return nil, err
	}

	tx := q.Page(q.Where(db.WithContext(ctx).Model(new(T))))
	if opts.Preload != "" {
		if len(opts.PreloadSelect) > 0 {
			cols := opts.PreloadSelect
			tx = tx.Preload(opts.Preload, func(p *gorm.DB) *gorm.DB { return p.Select(cols) })
		} else {
			tx = tx.Preload(opts.Preload)
		}
	}

	items := make([]T, 0)
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}

	res := &Results{
		Count:      len(items),
		Total:      total,
		Pagination: helper.BuildPagination(total, q.Paging),
		Data:       items,
	}
	if len(q.Select) > 0 {
		keep := map[string]bool{"id": true}
		for _, s := range q.Select {
			keep[s] = true
		}
		if rel, ok := fields.relations[opts.Preload]; ok {
			keep[rel.json] = true
		}
		projected, err := project(items, keep)
		if err != nil {
			return nil, err
		}
		res.Data = projected
	}
	return res, nil
}

// project drops every json key not in keep.
func project[T any](items []T, keep map[string]bool) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(items))
	for i := range items {
		raw, err := sonic.Marshal(&items[i])
		if err != nil {
			return nil, err
		}
		var m map[string]any
		if err := sonic.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		for k := range m {
			if !keep[k] {
				delete(m, k)
			}
		}
		out = append(out, m)
	}
	return out, nil
}

type resultsKey struct{}

// AdvancedResults runs the list query for T described by the request's
// query string and stores the outcome for GetAdvancedResults.
func AdvancedResults[T any](db *gorm.DB, opts Options) fiber.Handler {
	fields := MustFieldsOf(new(T))
	return func(c *fiber.Ctx) error {
		values, err := url.ParseQuery(string(c.Request().URI().QueryString()))
		if err != nil {
			return helper.BadRequest("Malformed query string")
		}
		q, err := ParseQuery(values, fields, opts)
		if err != nil {
			return err
		}
		res, err := RunQuery[T](c.UserContext(), db, q, fields, opts)
		if err != nil {
			return err
		}
		c.Locals(resultsKey{}, res)
		return c.Next()
	}
}

func GetAdvancedResults(c *fiber.Ctx) *Results {
	r, _ := c.Locals(resultsKey{}).(*Results)
	return r
}
