package middleware

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

// FieldWithType объявляет ожидаемый JSON-тип поля тела запроса.
// Поддерживаются "string", "number" и "boolean".
type FieldWithType struct {
	Name string
	Type string
}

// StringsOnly молча выбрасывает из тела запроса все поля верхнего уровня,
// значения которых не являются строками. Ошибкой это не считается: проверка
// обязательных полей сработает уже в хендлере.
func StringsOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		filterBody(c, func(name string, value any) bool {
			_, ok := value.(string)
			return ok
		})
		c.Next()
	}
}

// ExplicitTypes выбрасывает объявленные поля, если их тип во время выполнения
// не совпадает с заявленным. Необъявленные поля не трогает.
func ExplicitTypes(fields []FieldWithType) gin.HandlerFunc {
	declared := make(map[string]string, len(fields))
	for _, f := range fields {
		declared[f.Name] = f.Type
	}

	return func(c *gin.Context) {
		filterBody(c, func(name string, value any) bool {
			want, ok := declared[name]
			if !ok {
				return true
			}
			switch want {
			case "string":
				_, ok = value.(string)
			case "number":
				_, ok = value.(float64)
			case "boolean":
				_, ok = value.(bool)
			default:
				ok = false
			}
			return ok
		})
		c.Next()
	}
}

// filterBody перечитывает JSON-объект тела и оставляет только поля, прошедшие keep.
// Тело, не являющееся JSON-объектом, возвращается как было.
func filterBody(c *gin.Context, keep func(name string, value any) bool) {
	if c.Request.Body == nil {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		return
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		return
	}

	for name, value := range fields {
		if !keep(name, value) {
			delete(fields, name)
		}
	}

	clean, err := json.Marshal(fields)
	if err != nil {
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		return
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(clean))
	c.Request.ContentLength = int64(len(clean))
}
