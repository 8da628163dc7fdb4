/*
Package x contains some standard extensions

Extensions implement common functionality (handlers, models)
and can be combined together to construct an application.

All sub-packages are various extensions, useful to build
applications, but not necessary to use the framework.
All of them provide handlers that you can wire up into
your application.

The files in this top-level package provide common utilities
for all extensions, like authentication wrappers.
*/
package x
