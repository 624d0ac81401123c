package constant

const (
	ImageHistoryLimit      = 50
	ImageMaxCount          = 4
	ImageInferenceSteps    = 50
	ImageGuidanceScale     = 7.5
	ImageBusyDetailLength  = 100
	ImageErrorDetailLength = 200
)

const (
	MsgImagePromptRequired = "Image prompt is required"
	MsgImageCountInvalid   = "Please enter a valid number of images (1-4)."
	MsgImageKeyMissing     = "Server configuration error: Hugging Face API key missing or invalid."
)

const (
	MsgImageHistoryFailed = "Failed to fetch image history."
	MsgImageSaveFailed    = "Failed to save generated image."

	MsgImageAuthError     = "Authentication/Permission error: Please check your Hugging Face API token's validity and permissions on HuggingFace.co."
	MsgImageBusyErrorFn   = "Model loading error: The model might be loading or busy. Please try again in a moment. (Details: %s)"
	MsgImageRateLimited   = "Rate limit exceeded: You are sending too many requests. Please wait and try again."
	MsgImageStatusErrorFn = "Hugging Face API error (Status: %d): %s"
	MsgImageNetworkError  = "Network connection error. Please check your internet connection."
	MsgImageUnexpectedFn  = "An unexpected error occurred: %s"
)

// Placeholder values shipped in sample env files; treated as unset.
var ImagePlaceholderKeys = []string{"hf_YOUR_HUGGING_FACE_API_TOKEN", "YOUR_HUGGING_FACE_API_TOKEN"}
