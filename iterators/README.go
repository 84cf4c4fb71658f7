/*

Package iterators provide iterator implementations.


Summary

An iterator goal is to decouple the facts about the origin of the data,
to the consumer who use the data.
Most common scenario is to hide the fact if data is from a pre-tokenized word list,
a lazy re-scan of the source text, a producer goroutine or an io.Reader.
This helps to design data consumers that doesn't rely on the data source concrete implementation,
while still able to do composition and different kind of actions on the received data stream.
An Iterator represent multiple data that can be 0 and infinite.
As a general rule of thumb, if the consumer is not the final destination of the data stream,
the consumer should use the pipeline pattern, in order to avoid bottleneck with local resources.

Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder


Resources

https://en.wikipedia.org/wiki/Iterator_pattern
https://en.wikipedia.org/wiki/Pipeline_(software)

*/
package iterators
