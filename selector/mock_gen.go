// selector/mock_gen.go
package selector

//go:generate mockgen -typed -source=./node.go -destination=../internal/mocks/mock_node.go -package=mocks Node,Element
