package scaffold

const (
	BaseClassYes = "yes"
	BaseClassNo  = "no"

	// DefaultDir is created under the app path, one sub-directory per group.
	DefaultDir = "rester"

	resterImportPath = "github.com/rendau/rester/rester"

	Help = `Generate a new API definition inside a specific group folder.

Usage:
    rester create --group=<group> --api-name=<name> [--base-class=yes|no] [--app-path=<dir>]

Arguments:
    --group       The folder group under <app-path>/rester where the definitions are created.
    --api-name    The name of the API definition type.
    --base-class  By default it's 'yes', 'no' skips the shared base type for the group.
    --app-path    The application root, current directory by default.

Examples:
    rester create --group=Billing --api-name=Invoice
        - This will create following files
           rester/billing/billing_base.go (optional)
           rester/billing/invoice.go

If the group folder doesn't exist, it will be created automatically.
`
)
