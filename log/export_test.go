package log

var GenTrackID = genTrackID
