// Package environment names the deployment stage formguard runs in and
// carries it through request contexts.
//
// Parse maps APP_ENV values, including the short forms dev, stage and prod,
// onto Development, Staging or Production; anything else is Development.
// Middleware attaches the stage to every request so handlers can vary
// behaviour, for example showing internal error details only in
// development:
//
//	r.Use(environment.Middleware(environment.Parse(os.Getenv("APP_ENV"))))
//
//	if environment.IsDevelopment(r.Context()) {
//		msg = err.Error()
//	}
package environment
