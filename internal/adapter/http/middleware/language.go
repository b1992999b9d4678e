package middleware

import (
	"taskboard/pkg/translator"

	"github.com/gin-gonic/gin"
)

// LanguageMiddleware stores the request language so handlers can localize
// response messages.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Keep language handling simple: use the raw header value, fallback to pt
		// since that is what the board's clients speak.
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguagePt
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguagePt
}
