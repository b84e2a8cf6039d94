package pagination

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage = 1
	DefaultSize = 5
	MaxSize     = 100
)

// Params - параметры пагинации, страницы нумеруются с 1
type Params struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// Default возвращает параметры по умолчанию
func Default() Params {
	return Params{Page: DefaultPage, Size: DefaultSize}
}

// Parse разбирает page и size из строк запроса. Пустая строка означает значение по умолчанию.
func Parse(page, size string) (Params, error) {
	p := Default()
	var err error
	if p.Page, err = parseInt("page", page, DefaultPage); err != nil {
		return Params{}, err
	}
	if p.Size, err = parseInt("size", size, DefaultSize); err != nil {
		return Params{}, err
	}
	return p, p.Validate()
}

// UnmarshalJSON принимает page и size как числами, так и строками
func (p *Params) UnmarshalJSON(data []byte) error {
	var raw struct {
		Page json.RawMessage `json:"page"`
		Size json.RawMessage `json:"size"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	page, err := rawInt("page", raw.Page, DefaultPage)
	if err != nil {
		return err
	}
	size, err := rawInt("size", raw.Size, DefaultSize)
	if err != nil {
		return err
	}
	*p = Params{Page: page, Size: size}
	return nil
}

// Validate отклоняет page < 1, size < 1, size > MaxSize и страницы,
// смещение которых не помещается в int
func (p Params) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", p.Page)
	}
	if p.Size < 1 || p.Size > MaxSize {
		return fmt.Errorf("size must be between 1 and %d, got %d", MaxSize, p.Size)
	}
	if p.Page-1 > math.MaxInt/p.Size {
		return fmt.Errorf("page %d is out of range for size %d", p.Page, p.Size)
	}
	return nil
}

// Offset - смещение первой записи страницы
func (p Params) Offset() int {
	return (p.Page - 1) * p.Size
}

// Limit - максимальное число записей на странице
func (p Params) Limit() int {
	return p.Size
}

func parseInt(field, value string, def int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return n, nil
}

func rawInt(field string, raw json.RawMessage, def int) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return def, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fmt.Errorf("invalid %s: %w", field, err)
		}
		return parseInt(field, s, def)
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	return n, nil
}

// Page - страница результатов. Total считается отдельным запросом и может
// расходиться с Items при параллельной записи.
type Page[T any] struct {
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}

// NewPage собирает страницу из параметров запроса
func NewPage[T any](p Params, total int64, items []T) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Page: p.Page, Size: p.Size, Total: total, Items: items}
}

// Map преобразует элементы страницы, сохраняя page, size и total
func Map[T, R any](page *Page[T], fn func(T) R) *Page[R] {
	items := make([]R, len(page.Items))
	for i, item := range page.Items {
		items[i] = fn(item)
	}
	return &Page[R]{Page: page.Page, Size: page.Size, Total: page.Total, Items: items}
}

// CountFunc возвращает полное число подходящих записей
type CountFunc func(ctx context.Context) (int64, error)

// ListFunc возвращает не более limit записей начиная с offset
type ListFunc[T any] func(ctx context.Context, limit, offset int) ([]T, error)

// Collect выполняет запрос количества и запрос страницы
func Collect[T any](ctx context.Context, p Params, count CountFunc, list ListFunc[T]) (*Page[T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	total, err := count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	items, err := list(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return NewPage(p, total, items), nil
}
