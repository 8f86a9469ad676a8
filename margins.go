// Package margins turns e-reader notebook exports into normalized highlight
// reports. It parses the semi-structured HTML that Kindle "notebook export"
// messages carry, archives the extracted highlights, and renders them as
// markdown reports for delivery to chat, email, or disk.
//
// This package contains domain types, interfaces, and the pure parsing core
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// letters/, telegram/).
package margins
