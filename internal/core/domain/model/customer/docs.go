// Package customer provides the Customer entity: the named party placing an order.
package customer
