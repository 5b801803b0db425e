// formctl is the terminal front end for the users API: the same form,
// table and confirmation flow the web pages offer, driven over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/crisvega/userhub/internal/client"
	"github.com/crisvega/userhub/internal/client/cli"
	"github.com/crisvega/userhub/internal/client/form"
	"github.com/crisvega/userhub/internal/config"
)

func main() {
	cfg := config.Load()

	var (
		baseURL  = flag.String("server", cfg.APIBaseURL, "base URL of the users API")
		validate = flag.Bool("schema", true, "use the schema-validated endpoint")
		precheck = flag.Bool("precheck", true, "check login/email uniqueness against the cached list before submitting")
	)

	flag.Parse()

	variant := client.VariantPlain
	mode := form.ModeBasic

	if *validate {
		variant = client.VariantSchema
		mode = form.ModeSchema
	}

	api := client.New(*baseURL, variant)

	ctrl := form.NewController(api, form.Options{
		Mode:           mode,
		UniquePrecheck: *precheck,
	})

	app := cli.NewApp(ctrl, os.Stdin, os.Stdout)

	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
