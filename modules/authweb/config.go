package authweb

// Config declares the module's routes and redirect targets. All values have
// working defaults; override via environment for deployments that mount the
// pages elsewhere.
type Config struct {
	// SignInPath serves the sign-in page (GET) and submissions (POST).
	SignInPath string `env:"AUTHWEB_SIGNIN_PATH" envDefault:"/signin"`

	// SignUpPath serves the sign-up page (GET) and submissions (POST).
	SignUpPath string `env:"AUTHWEB_SIGNUP_PATH" envDefault:"/signup"`

	// CallbackPath receives the provider redirect after OAuth and magic-link
	// completion.
	CallbackPath string `env:"AUTHWEB_CALLBACK_PATH" envDefault:"/auth/callback"`

	// SignOutPath terminates the session (POST only).
	SignOutPath string `env:"AUTHWEB_SIGNOUT_PATH" envDefault:"/signout"`

	// LandingPath receives users after a successful sign-in.
	LandingPath string `env:"AUTHWEB_LANDING_PATH" envDefault:"/dashboard"`

	// CallbackURL is the absolute URL handed to the provider as the redirect
	// target. Empty means CallbackPath is sent as-is, which works when the
	// provider and the app share an origin.
	CallbackURL string `env:"AUTHWEB_CALLBACK_URL"`
}

// DefaultConfig returns the route table the rest of the toolkit assumes.
func DefaultConfig() Config {
	return Config{
		SignInPath:   "/signin",
		SignUpPath:   "/signup",
		CallbackPath: "/auth/callback",
		SignOutPath:  "/signout",
		LandingPath:  "/dashboard",
	}
}

func (c Config) callbackURL() string {
	if c.CallbackURL != "" {
		return c.CallbackURL
	}
	return c.CallbackPath
}
