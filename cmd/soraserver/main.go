// soraserver classifies drone operations under JARUS SORA 2.0 and 2.5.
//
// Usage:
//
//	# Start the HTTP API with the defaults
//	soraserver serve
//
//	# Start with a configuration file
//	soraserver serve --config /etc/sora/config.toml
//
//	# Run one assessment from a file and print the result
//	soraserver assess operation.yaml
//
//	# Show version information
//	soraserver version
package main

func main() {
	Execute()
}
