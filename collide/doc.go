// Package collide implements the collision-mode scans: two cursors start at
// opposite ends of a random-access sequence and close in on each other,
// classifying everything outside [lo, hi] as they go.
//
// What:
//
//   - PairSum: indices of two elements of an ascending slice summing to a
//     target (the sorted two-sum).
//   - TripletSum: all unique value triplets summing to a target, via an
//     anchor cursor plus a collision scan of the suffix.
//   - MaxArea: container-with-most-water area maximization.
//   - IsPalindrome / IsPalindromeFold: byte-wise palindrome checks, strict
//     or case-folded over alphanumerics only.
//   - Partition3: Dutch national flag three-way partition around a pivot.
//   - Reverse: in-place reversal by symmetric swaps.
//
// Every operation is O(n) time and O(1) auxiliary space (TripletSum sorts a
// copy first: O(n log n) time, O(n) space for the copy). "No result" is a
// sentinel value (-1 indices, nil, false, 0); malformed input is ErrUnsorted
// where the scan can detect it cheaply on the travelled prefix.
package collide
