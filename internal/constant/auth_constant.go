package constant

const (
	MsgAuthNoToken      = "Not authorized, no token"
	MsgAuthTokenExpired = "Not authorized, token expired"
	MsgAuthTokenFailed  = "Not authorized, token failed"
	MsgAuthUserNotFound = "Not authorized, user not found"

	MsgSignupFieldsRequired = "Please enter all fields"
	MsgSignupDuplicate      = "User with that username or email already exists"
	MsgLoginFieldsRequired  = "Please enter both email/username and password"
	MsgInvalidCredentials   = "Invalid credentials"
)

const (
	MsgSignupSuccess = "User registered successfully"
	MsgLoginSuccess  = "Logged in successfully"
	MsgSignupFailed  = "Server error during signup"
	MsgLoginFailed   = "Server error during login"
)
