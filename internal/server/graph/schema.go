package graph

// Schema is the public GraphQL contract.
const Schema = `
schema {
	query: Query
	mutation: Mutation
}

type Question {
	id: ID!
	body: String!
	createdAt: String!
	username: String!
	responses: [Response]!
	responseCount: Int!
	favorites: [Favorite]!
	favoriteCount: Int!
}

type User {
	id: ID!
	email: String!
	token: String!
	username: String!
	createdAt: String!
}

type Response {
	id: ID!
	createdAt: String!
	username: String!
	body: String!
}

type Favorite {
	id: ID!
	createdAt: String!
	username: String!
}

input RegisterInput {
	username: String!
	password: String!
	confirmPassword: String!
	email: String!
}

type Query {
	getQuestions: [Question]
	getQuestion(questionId: ID!): Question
}

type Mutation {
	register(registerInput: RegisterInput): User!
	login(username: String!, password: String!): User!
	createQuestion(body: String!): Question!
	deleteQuestion(questionId: ID!): String!
	createResponse(questionId: String!, body: String!): Question!
	deleteResponse(questionId: ID!, responseId: ID!): Question!
	favoriteQuestion(questionId: ID!): Question!
}
`
