// Package apod reads the Astronomy Picture of the Day record from api.nasa.gov.
package apod
