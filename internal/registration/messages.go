package registration

import (
	"fmt"
	"strings"
)

const (
	MsgWelcome = "¡Bienvenido al registro del censo!\n" +
		"Le haré algunas preguntas; puede cancelar en cualquier momento con /cancelar.\n\n" +
		"Por favor, indique su nombre completo."
	MsgPromptNationalID   = "Indique su número de cédula (solo dígitos, entre 6 y 10)."
	MsgPromptAddress      = "Indique la dirección de su negocio."
	MsgPromptDocument     = "Adjunte una foto o archivo de una factura de servicios de su negocio."
	MsgPromptBusinessName = "Indique el nombre de su negocio."
	MsgPromptActivity     = "Describa la actividad económica de su negocio."

	MsgEmptyName         = "El nombre no puede estar vacío. Indique su nombre completo."
	MsgInvalidNationalID = "Número de cédula inválido. Debe contener solo dígitos, entre 6 y 10. Inténtelo de nuevo."
	MsgEmptyAddress      = "La dirección no puede estar vacía. Indique la dirección de su negocio."
	MsgMissingAttachment = "No recibí ningún archivo. Adjunte una foto o documento de su factura de servicios."
	MsgEmptyBusinessName = "El nombre del negocio no puede estar vacío. Inténtelo de nuevo."
	MsgEmptyActivity     = "La descripción no puede estar vacía. Describa la actividad económica."

	MsgSaved      = "✅ Registro guardado correctamente. ¡Gracias por participar en el censo!"
	MsgSaveFailed = "Ocurrió un error al guardar su registro. Por favor, intente el proceso nuevamente más tarde con /registro."
	MsgCancelled  = "Registro cancelado. Puede comenzar de nuevo con /registro."
	MsgNoSession  = "No hay un registro en curso. Envíe /registro para comenzar."
)

func prompt(f Field) string {
	switch f {
	case FieldName:
		return MsgWelcome
	case FieldNationalID:
		return MsgPromptNationalID
	case FieldAddress:
		return MsgPromptAddress
	case FieldDocument:
		return MsgPromptDocument
	case FieldBusinessName:
		return MsgPromptBusinessName
	case FieldActivity:
		return MsgPromptActivity
	default:
		return MsgNoSession
	}
}

// Summary renders the answered fields for review before confirmation.
func Summary(sess *Session) string {
	var b strings.Builder

	b.WriteString("Estos son los datos de su registro:\n\n")
	fmt.Fprintf(&b, "Nombre: %s\n", sess.Answers[FieldName])
	fmt.Fprintf(&b, "Cédula: %s\n", sess.Answers[FieldNationalID])
	fmt.Fprintf(&b, "Dirección: %s\n", sess.Answers[FieldAddress])
	fmt.Fprintf(&b, "Código de factura: %s\n", sess.Answers[FieldDocument])
	fmt.Fprintf(&b, "Negocio: %s\n", sess.Answers[FieldBusinessName])
	fmt.Fprintf(&b, "Actividad: %s\n", sess.Answers[FieldActivity])
	b.WriteString("\n¿Son correctos? (Si/No)")

	return b.String()
}
