// Package sessionfile reads and writes sessions as JSON documents.
//
// The document mirrors mocap.Session: marker positions are stored frame
// by frame, analog values sample by sample. Loaded sessions are validated
// before they are returned, and Write never leaves a partial file behind.
package sessionfile
