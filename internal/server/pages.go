package server

import (
	"html/template"
	"net/http"

	"github.com/sainthonore/pedidos/internal/auth"
)

const badCredentials = "Credenciales incorrectas"

var pages = template.Must(template.New("login").Parse(`<!doctype html>
<html lang="es">
<head><meta charset="utf-8"><title>Pedidos · Ingresar</title></head>
<body>
<h1>Pedidos</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/login">
<label>Usuario <input name="username" value="{{.Username}}" autofocus></label>
<label>Contraseña <input name="password" type="password"></label>
<button type="submit">Ingresar</button>
</form>
</body>
</html>
`))

func init() {
	template.Must(pages.New("home").Parse(`<!doctype html>
<html lang="es">
<head><meta charset="utf-8"><title>Pedidos</title></head>
<body>
<h1>Pedidos</h1>
<p>Sesión iniciada como <strong>{{.Username}}</strong>{{with .Brands}} ({{range $i, $b := .}}{{if $i}}, {{end}}{{$b}}{{end}}){{end}}.</p>
<p>Calendario disponible en <code>/api/providers</code>, <code>/api/countries</code>, <code>/api/events</code> y <code>/api/ics</code>.</p>
<p><a href="/logout">Salir</a></p>
</body>
</html>
`))
}

type loginPage struct {
	Username string
	Error    string
}

func (s *Server) renderLogin(w http.ResponseWriter, r *http.Request, username, errText string) {
	s.render(w, r, "login", loginPage{Username: username, Error: errText})
}

func (s *Server) renderHome(w http.ResponseWriter, r *http.Request, acct auth.Account) {
	s.render(w, r, "home", acct)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		entry(r, s.log).WithError(err).WithField("page", name).Error("render failed")
	}
}
