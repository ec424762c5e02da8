package application

import (
	"fmt"
	"strings"

	"github.com/bnema/verbtrainer/internal/domain"
)

const welcomeText = `¡Hola! 👋 Soy tu entrenador de verbos españoles.

Comandos disponibles:
/start - Mostrar este mensaje
/practice - Practicar conjugaciones
/quiz - Una pregunta suelta (opcional: /quiz hablar)
/help - Ayuda

¡Empecemos a practicar! Usa /practice para comenzar.`

const helpText = `🔤 Cómo usar el bot:

1. Usa /practice para comenzar
2. Selecciona grupos de tiempos para estudiar
3. Te daré un verbo en infinitivo y te pediré que lo conjugues
4. Escribe tu respuesta
5. Te diré si es correcta y continuaremos con una nueva pregunta

Ejemplo:
Bot: Conjugar "hablar" (говорить) en Presente para "tú"
Tú: hablas
Bot: ¡Correcto! ✅

¡Buena suerte! 🍀

Características:
- Las respuestas se aceptan con y sin acentos
- La práctica continúa automáticamente hasta que la detengas
- Usa el botón "🛑 Parar práctica" para terminar`

const (
	nudgeText          = "¡Hola! 👋 Usa /practice para empezar a practicar conjugaciones de verbos."
	stoppedText        = "🛑 Práctica detenida. Usa /practice para empezar de nuevo."
	failureText        = "¡Ups! Algo salió mal. Intenta de nuevo con /practice"
	emptySelectionText = "¡Selecciona al menos un grupo de tiempos!"
	nothingSelected    = "Nada seleccionado"

	startPracticeLabel  = "🎯 Empezar práctica"
	resetSelectionLabel = "🔄 Resetear"
	stopPracticeLabel   = "🛑 Parar práctica"
)

func selectionText(selectedNames []string) string {
	selected := nothingSelected
	if len(selectedNames) > 0 {
		selected = strings.Join(selectedNames, ", ")
	}

	return fmt.Sprintf("🎯 Selecciona tiempos para practicar:\n\nSeleccionado: %s\n\nHaz clic en los tiempos para seleccionar/deseleccionar, luego 'Empezar práctica'", selected)
}

func challengeText(challenge domain.Challenge) string {
	return fmt.Sprintf("🔤 Conjugar el verbo:\n\n%s (%s) en %s para %s\n\nEscribe tu respuesta:",
		challenge.Verb, challenge.Translation, challenge.TenseName, challenge.PersonName)
}

func gradeText(grade GradeView) string {
	var b strings.Builder
	if grade.Correct {
		fmt.Fprintf(&b, "¡Correcto! ✅\n\n%s (%s) → %s\n\n", grade.Verb, grade.Translation, grade.Expected)
		if grade.Continues {
			b.WriteString("Siguiente pregunta:")
		} else {
			b.WriteString("¿Quieres practicar otro verbo? Usa /practice")
		}
		return b.String()
	}

	fmt.Fprintf(&b, "❌ Incorrecto.\n\nTu respuesta: %s\nRespuesta correcta: %s\n\n", grade.Submitted, grade.Expected)
	if grade.Continues {
		b.WriteString("Siguiente pregunta:")
	} else {
		b.WriteString("¿Quieres intentar otro verbo? Usa /practice")
	}
	return b.String()
}

func unknownVerbText(verb domain.VerbID) string {
	return fmt.Sprintf("🤔 No conozco el verbo %q. Usa /quiz para un verbo al azar.", string(verb))
}
