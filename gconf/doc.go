/*
Package gconf provides a toolset for managing an extension
configuration.

Each package can declare its own configuration object, stored
as a singleton in the database under a key derived from the
package name. Configuration is initialized from the genesis and
can later be updated by whoever the configuration itself names
as authorized.
*/
package gconf
