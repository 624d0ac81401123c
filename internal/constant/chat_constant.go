package constant

const (
	ChatGreetingMessage = "Hello! How can I assist you in this new session?"
	ChatDefaultTitle    = "New Chat"
	ChatTitleMaxLength  = 50

	ChatMalformedReplyMessage = "AI response failed or was unexpected."
	ChatErrorReplyPrefix      = "Error: "
)

// Client-facing failure messages.
const (
	MsgChatFieldsRequired   = "Message content and session ID are required"
	MsgChatSessionRequired  = "Session ID is required to delete chat."
	MsgChatKeyMissing       = "Server configuration error: AI API key missing."
	MsgChatInvalidReply     = "Failed to get a valid response from AI. Please try again."
	MsgChatUpstreamFailed   = "Error processing AI chat request."
	MsgChatSessionNotFound  = "No chat session found with that ID for the current user, or no messages to delete."
	MsgChatSessionDeletedFn = "Session '%s' and %d messages deleted successfully."
)

const (
	MsgChatHistoryFailed  = "Error fetching chat history."
	MsgChatSessionsFailed = "Error fetching chat sessions."
	MsgChatDeleteFailed   = "Error deleting chat session."
	MsgChatCreateFailed   = "Failed to create new chat session."
	MsgChatUnknownError   = "Unknown API error"
)
