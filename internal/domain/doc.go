// Package domain contains the value types exchanged by the API and the error
// taxonomy shared by the service and HTTP layers. It has no dependencies on
// transport or infrastructure code.
package domain
