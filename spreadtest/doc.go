/*
Package spreadtest provides mocked implementations of the core
interfaces. Use those structures for tests instead of implementing
your own mocks.

Structures provided by this package are straightforward mocks.
They provide the basic functionality and are not a replacement
for a fully functional implementations.
*/
package spreadtest
