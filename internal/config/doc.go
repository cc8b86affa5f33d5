// Package config defines the csgroup configuration model and its sources.
//
// The [Config] struct carries the CloudStack API endpoint and credentials, the
// retry policy for read-only API calls and the optional metrics textfile path.
// [Load] merges, in increasing precedence, a YAML file, the cloudstack.ini file
// used by the CloudStack CLI tools, CLOUDSTACK_* environment variables and
// explicit [Overrides] taken from flags or module arguments.
package config
