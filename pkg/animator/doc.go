/*
Package animator is an in-memory implementation of the host animation controller port.

It records layers, states, transitions and parameters exactly as the compiler asks for them and
converts the result into a domain.Graph snapshot. Parameter constructors are memoised by name, so
every caller asking for "VF_Outfit_Lock" shares one parameter.
*/
package animator
