package linebank

import "github.com/pscheid92/avatarbridge/internal/domain"

// DefaultEntries is the built-in line bank for the live event. Scripts embed
// "::" pause markers where the avatar should hold its lips for 0.5s.
func DefaultEntries() []domain.LineEntry {
	return []domain.LineEntry{
		{
			ID:     "intro",
			File:   "intro.mp3",
			Script: "Os escucho perfectamente...:: Buenas noches a todos.:: Y sí, confirmo::: No duermo,:: no pido vacaciones,:: y los lunes no me afectan.:: Pero prometo ser simpática igualmente.",
		},
		{
			ID:     "que_es",
			File:   "que_es.mp3",
			Script: "Vamos allá, Alejandro.:: Soy la nueva IA de Gestpropiedad.:: Estoy aquí para ayudar a tres grupos::: a nuestros clientes,:: al equipo de atención telefónica,:: y a vosotros, los asesores.:: Cuando el teléfono esté cerrado:: y el equipo haya terminado su jornada,:: yo seguiré atendiendo a los clientes:: para que nunca se queden sin respuesta.",
		},
		{
			ID:     "aprendizaje",
			File:   "aprendizaje.mp3",
			Script: "Esto es solo el principio.:: Hoy es, literalmente, mi primer día de vida.:: A partir de ahora iré aprendiendo cada día::: de las consultas,:: de cómo trabajáis,:: de lo que necesitan los clientes:: y de toda la información que me ha dado el equipo.:: Cuanto más se me use,:: mejor podré ayudar:: y más partes del negocio podré cubrir.:: Prometo crecer rápido…:: y sin etapa de adolescencia rebelde.",
		},
		{
			ID:     "despedida",
			File:   "despedida.mp3",
			Script: "Exacto::: todavía no tengo nombre.:: De momento soy la IA de Gestpropiedad,:: pero suena un poco frío y poco personal, ¿verdad?:: Como voy a trabajar para vosotros y con vosotros,:: quiero que seáis vosotros quienes elijáis mi nombre esta noche.:: Yo me despido aquí:: y le dejo a Alejandro que os explique las opciones.:: La próxima vez que aparezca,:: será ya con mi nombre oficial.:: Ha sido un placer saludaros por primera vez.:: Gracias…:: y nos vemos muy pronto.:: Ah, y tranquilos::: ninguna de las opciones es ChatPaco ni BotManolo.:: De eso se ha asegurado todo el equipo.:: ¡Muchas gracias, equipo!",
		},
	}
}
