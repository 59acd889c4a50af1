package dialog

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"
	"strconv"
	"time"
)

type Kind string

const (
	KindInfo    Kind = "info"
	KindConfirm Kind = "confirm"
)

const (
	TitleSuccess = "Éxito"
	TitleError   = "Error"
	TitleConfirm = "Confirmar Eliminación"
)

// Dialog es estado del llamador: la vista decide si está abierto y qué muestra.
// El diálogo no guarda nada propio.
type Dialog struct {
	Open    bool
	Kind    Kind
	Title   string
	Message string

	// ConfirmAction recibe el POST del botón "Sí" (solo KindConfirm).
	ConfirmAction string
	// CancelURL es a dónde lleva "No"/"Cerrar"; vacío = cerrar en el
	// navegador, sin request.
	CancelURL string

	// Si DismissAfter > 0 el diálogo se cierra solo. Con DismissURL la página
	// navega ahí; sin ella el diálogo solo se oculta.
	DismissAfter time.Duration
	DismissURL   string
}

// Closed es el valor inicial de cualquier vista.
func Closed() Dialog { return Dialog{} }

func Info(title, message string) Dialog {
	return Dialog{Open: true, Kind: KindInfo, Title: title, Message: message}
}

func Error(message string) Dialog { return Info(TitleError, message) }

func Success(message string) Dialog { return Info(TitleSuccess, message) }

func Confirm(title, message, confirmAction, cancelURL string) Dialog {
	return Dialog{
		Open:          true,
		Kind:          KindConfirm,
		Title:         title,
		Message:       message,
		ConfirmAction: confirmAction,
		CancelURL:     cancelURL,
	}
}

// WithAutoDismiss programa el cierre automático; url vacía = no navegar.
func (d Dialog) WithAutoDismiss(after time.Duration, url string) Dialog {
	d.DismissAfter = after
	d.DismissURL = url
	return d
}

// WithCloseURL define a dónde lleva el botón de cerrar/cancelar.
func (d Dialog) WithCloseURL(url string) Dialog {
	d.CancelURL = url
	return d
}

func (d Dialog) IsConfirm() bool { return d.Kind == KindConfirm }

func (d Dialog) AutoDismiss() bool { return d.Open && d.DismissAfter > 0 }

// Navigates indica que el cierre automático recarga otra página.
func (d Dialog) Navigates() bool { return d.AutoDismiss() && d.DismissURL != "" }

// HidesInPlace indica que el cierre automático solo oculta el diálogo.
func (d Dialog) HidesInPlace() bool { return d.AutoDismiss() && d.DismissURL == "" }

// HideDelay es el animation-delay CSS del cierre en el lugar, p.ej. "1.5s".
func (d Dialog) HideDelay() string {
	return strconv.FormatFloat(d.DismissAfter.Seconds(), 'f', -1, 64) + "s"
}

// RefreshContent arma el valor de <meta http-equiv="refresh">, p.ej. "1.5;url=/duenos".
func (d Dialog) RefreshContent() string {
	secs := strconv.FormatFloat(d.DismissAfter.Seconds(), 'f', -1, 64)
	if d.DismissURL == "" {
		return secs
	}
	return secs + ";url=" + d.DismissURL
}

//go:embed dialog.html
var markup string

type closeButton struct {
	URL   string
	Label string
	Class string
}

// closeAction arma el botón de cierre: con URL navega, sin URL cierra el
// <dialog> en el navegador (form method="dialog").
func closeAction(url, label, class string) closeButton {
	return closeButton{URL: url, Label: label, Class: class}
}

// Template define "dialog" para que las páginas lo incluyan con {{template "dialog" .Dialog}}.
var Template = template.Must(template.New("dialog.html").
	Funcs(template.FuncMap{"closeAction": closeAction}).
	Parse(markup))

// Render escribe el markup; un diálogo cerrado no escribe nada.
func (d Dialog) Render(w io.Writer) error {
	if !d.Open {
		return nil
	}
	return Template.ExecuteTemplate(w, "dialog", d)
}

// HTML devuelve el markup listo para incrustar en otra plantilla.
func (d Dialog) HTML() template.HTML {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}
