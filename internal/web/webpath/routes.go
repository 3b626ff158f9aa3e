package webpath

const (
	Signin = "/signin"
	Signup = "/signup"
	Ws     = "/ws"
	Home   = "/"

	Api               = "/api"
	ApiPreferences    = Api + "/preferences"
	ApiVacancies      = Api + "/vacancies"
	ApiAvailabilities = Api + "/availabilities"
	ApiTrials         = Api + "/trials"
	ApiMatches        = Api + "/matches"
	ApiJobs           = Api + "/jobs/:name"
)
