package bot

const (
	helpText = "📝 Welcome to the Note Saver Bot!\n\n" +
		"To use this bot, you can use the following commands:\n" +
		"- `/save note`: 💾 Save a note.\n" +
		"- `/update id new-note`: 🖊 Update a note.\n" +
		"- `/delete id`: 🗑 Delete a note.\n" +
		"- `/notes`: 📒 List your saved notes."

	startText = "📝 Welcome to the Note Saver Bot!\n" +
		"Send `/save note` to save it."

	emptyNoteText = "🚫 Cannot save an empty note!"
	savedText     = "✅ Note saved!"
	notFoundText  = "🚫 Note not found."
	noNotesText   = "⚪ No notes yet."
	listHeader    = "📃 *Saved notes*:\n\n"

	updatedFormat = "✏️ Note %s updated!"
	deletedFormat = "❌ Note %s deleted!"
)
