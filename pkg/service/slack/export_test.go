package slack

// EventHeadline exposes eventHeadline for testing
var EventHeadline = eventHeadline
