// Package patch применяет частичные обновления к записям.
//
// Запрос на обновление описывается таблицей полей: каждое поле связывает
// необязательное значение из запроса (указатель, nil - поле не передано)
// с полем целевой записи и политикой перезаписи. Очистить поле через patch
// нельзя: отсутствующее значение всегда оставляет цель без изменений.
package patch

// Field - одно правило таблицы полей
type Field interface {
	// Name возвращает имя поля в запросе
	Name() string
	// Apply переносит значение в цель и сообщает, было ли поле записано
	Apply() bool
}

type present[V any] struct {
	name string
	src  *V
	dst  *V
}

func (f present[V]) Name() string { return f.name }

func (f present[V]) Apply() bool {
	if f.src == nil {
		return false
	}
	*f.dst = *f.src
	return true
}

// Present перезаписывает цель, если значение передано, даже нулевое
func Present[V any](name string, src *V, dst *V) Field {
	return present[V]{name: name, src: src, dst: dst}
}

type presentPtr[V any] struct {
	name string
	src  *V
	dst  **V
}

func (f presentPtr[V]) Name() string { return f.name }

func (f presentPtr[V]) Apply() bool {
	if f.src == nil {
		return false
	}
	v := *f.src
	*f.dst = &v
	return true
}

// PresentPtr - вариант Present для необязательных (nullable) полей цели
func PresentPtr[V any](name string, src *V, dst **V) Field {
	return presentPtr[V]{name: name, src: src, dst: dst}
}

type nonEmpty struct {
	name string
	src  *string
	dst  *string
}

func (f nonEmpty) Name() string { return f.name }

func (f nonEmpty) Apply() bool {
	if f.src == nil || *f.src == "" {
		return false
	}
	*f.dst = *f.src
	return true
}

// NonEmpty перезаписывает строковое поле, только если значение передано и не пустое
func NonEmpty(name string, src *string, dst *string) Field {
	return nonEmpty{name: name, src: src, dst: dst}
}

// Apply применяет все правила и возвращает имена записанных полей
func Apply(fields ...Field) []string {
	changed := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Apply() {
			changed = append(changed, f.Name())
		}
	}
	return changed
}
