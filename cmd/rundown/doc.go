// Command rundown reconstructs the running order of a highlights episode
// from scene, OCR, and transcript evidence, and inspects stored runs.
package main
