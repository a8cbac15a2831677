// Package environment names the environments a tool can run in and maps the
// common spellings found in configuration ("dev", "prod", "stage") onto them.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsDevelopment() {
//	    // human-readable logs
//	}
package environment
