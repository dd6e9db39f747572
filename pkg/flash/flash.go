package flash

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	noticeKey = "notice"
	alertKey  = "alert"
)

// Data is what templates receive under "Flash".
type Data struct {
	Notice string
	Alert  string
}

func Notice(c *gin.Context, msg string) {
	s := sessions.Default(c)
	s.AddFlash(msg, noticeKey)
	_ = s.Save()
}

func Alert(c *gin.Context, msg string) {
	s := sessions.Default(c)
	s.AddFlash(msg, alertKey)
	_ = s.Save()
}

// Take drains pending flash messages. Reading clears them, so a
// message survives exactly one render.
func Take(c *gin.Context) Data {
	s := sessions.Default(c)
	var d Data
	if f := s.Flashes(noticeKey); len(f) > 0 {
		if msg, ok := f[0].(string); ok {
			d.Notice = msg
		}
	}
	if f := s.Flashes(alertKey); len(f) > 0 {
		if msg, ok := f[0].(string); ok {
			d.Alert = msg
		}
	}
	_ = s.Save()
	return d
}
