/*
Package bootstraps synthesizes dispatch logic from small, composable functions.

Two leaf packages do the real work:

   objmethods   // structural Equals / HashCode / String from component accessors
   switches     // first-match dispatch over ordered case labels

Both build immutable lookup structures once, at construction time, and hand
out plain closures afterwards. Construction is where every configuration
error surfaces; a constructed bundle or table never fails at call time and
may be shared by any number of goroutines without synchronization.

This root package holds the composition helpers both build upon.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bootstraps
