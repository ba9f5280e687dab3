// Package ddb provides a list source backed by DynamoDB.
//
// Lists live in one table keyed by list name, with one item per member:
//
//   - Partition key: list_name (string)
//   - Sort key: member (string)
//
// Create the table with:
//
//	aws dynamodb create-table \
//	  --table-name filter-lists \
//	  --attribute-definitions AttributeName=list_name,AttributeType=S AttributeName=member,AttributeType=S \
//	  --key-schema AttributeName=list_name,KeyType=HASH AttributeName=member,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
package ddb
